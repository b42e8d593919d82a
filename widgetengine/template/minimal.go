package template

var minimalTemplate = Definition{
	ID:          "minimal",
	Name:        "Minimal",
	Description: "Flat, borderless look; no overlay behind the panel.",
	Variant: Variant{
		ClassPrefix: "fcwn",
		IconSet:     "glyph",
	},
	HTML: `<div class="fcwn-root fcwn-pos-{{POSITION}}" id="{{CONTAINER_ID}}" data-widget-id="{{WIDGET_ID}}">
  <div class="fcwn-modal" style="{{MODAL_ALIGNMENT_STYLE}}">
    <div class="fcwn-modal-content" style="{{MODAL_CONTENT_POSITION_STYLE}}">
      <div class="fcwn-modal-header">
        <span class="fcwn-greeting">{{GREETING_MESSAGE}}</span>
        <button class="fcwn-close" type="button" aria-label="Close">&times;</button>
      </div>
      {{VIDEO_MARKUP}}
      <div class="fcwn-channels" data-count="{{CHANNEL_COUNT}}">{{CHANNELS_MARKUP}}</div>
      <div class="fcwn-empty" style="display: {{EMPTY_STATE_DISPLAY}};">No contact channels configured yet.</div>
    </div>
  </div>
  <div class="fcwn-tooltip fcwn-tooltip-{{TOOLTIP_POSITION}}" style="{{TOOLTIP_POSITION_STYLE}}">{{TOOLTIP_TEXT}}</div>
  <button class="fcwn-button" type="button" aria-label="{{TOOLTIP_TEXT}}">{{BUTTON_CONTENT}}</button>
</div>`,
	CSS: `.fcwn-root {
  position: fixed;
  bottom: 20px;
  {{POSITION_STYLE}}
  z-index: 999999;
  font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, sans-serif;
}
.fcwn-button {
  width: {{BUTTON_SIZE}}px;
  height: {{BUTTON_SIZE}}px;
  border-radius: 50%;
  border: none;
  cursor: pointer;
  background: {{BUTTON_COLOR}};
  color: #fff;
  display: flex;
  align-items: center;
  justify-content: center;
  box-shadow: 0 2px 8px rgba(0, 0, 0, 0.18);
  transition: opacity 0.15s ease;
  overflow: hidden;
  padding: 0;
}
.fcwn-button:hover { opacity: 0.88; }
.fcwn-glyph { font-size: {{ICON_SIZE}}px; line-height: 1; }
.fcwn-button-icon-img { width: {{ICON_SIZE}}px; height: {{ICON_SIZE}}px; object-fit: contain; }
.fcwn-button-video { width: 100%; height: 100%; object-fit: cover; border-radius: 50%; }
.fcwn-tooltip {
  position: absolute;
  {{TOOLTIP_DEFAULT_VISIBILITY}}
  background: #374151;
  color: #fff;
  padding: 5px 9px;
  border-radius: 4px;
  font-size: 12px;
  white-space: nowrap;
  pointer-events: none;
  transition: opacity 0.15s ease;
}
.fcwn-root:hover .fcwn-tooltip { {{TOOLTIP_HOVER_VISIBILITY}} }
.fcwn-modal {
  position: fixed;
  inset: 0;
  display: none;
  align-items: flex-end;
  pointer-events: none;
  z-index: 999998;
}
.fcwn-modal.fcwn-open { display: flex; }
.fcwn-modal-content {
  pointer-events: auto;
  background: #ffffff;
  border: 1px solid #e5e7eb;
  border-radius: 8px;
  width: 300px;
  max-width: calc(100vw - 32px);
  max-height: 68vh;
  overflow-y: auto;
}
.fcwn-modal-header {
  display: flex;
  align-items: center;
  justify-content: space-between;
  padding: 12px 14px;
  border-bottom: 1px solid #f3f4f6;
}
.fcwn-greeting { font-size: 14px; font-weight: 500; color: #111827; }
.fcwn-close {
  border: none;
  background: none;
  font-size: 18px;
  line-height: 1;
  cursor: pointer;
  color: #9ca3af;
  padding: 2px 6px;
}
.fcwn-close:hover { color: #374151; }
.fcwn-channels {
  display: flex;
  flex-direction: column;
  gap: {{CHANNEL_GAP}}px;
  padding: 12px 14px;
}
.fcwn-channel {
  display: flex;
  align-items: center;
  gap: 10px;
  padding: 8px 10px;
  border-radius: 6px;
  color: #111827;
  background: #f9fafb;
  border-left: 3px solid transparent;
  text-decoration: none;
  cursor: pointer;
  font-size: 13px;
}
.fcwn-channel:hover { background: #f3f4f6; }
.fcwn-channel-icon { display: inline-flex; align-items: center; font-size: 16px; }
.fcwn-channel-icon img { width: 18px; height: 18px; object-fit: contain; }
.fcwn-channel-label { flex: 1; }
.fcwn-group { position: relative; }
.fcwn-group-trigger {
  display: flex;
  align-items: center;
  gap: 10px;
  width: 100%;
  padding: 8px 10px;
  border: none;
  border-radius: 6px;
  border-left: 3px solid transparent;
  color: #111827;
  background: #f9fafb;
  cursor: pointer;
  font-size: 13px;
  text-align: left;
}
.fcwn-group-trigger:hover { background: #f3f4f6; }
.fcwn-caret { margin-left: auto; color: #9ca3af; transition: transform 0.15s ease; }
.fcwn-group.fcwn-open .fcwn-caret { transform: rotate(180deg); }
.fcwn-dropdown {
  display: none;
  flex-direction: column;
  gap: 4px;
  margin-top: 4px;
  padding: 6px;
  border-left: 2px solid #e5e7eb;
  margin-left: 10px;
}
.fcwn-group.fcwn-open .fcwn-dropdown { display: flex; }
.fcwn-dropdown-item {
  display: flex;
  align-items: center;
  gap: 8px;
  padding: 7px 9px;
  border-radius: 5px;
  color: #374151;
  font-size: 12px;
  cursor: pointer;
  text-decoration: none;
}
.fcwn-dropdown-item:hover { background: #f3f4f6; }
.fcwn-empty {
  padding: 16px 14px;
  text-align: center;
  color: #9ca3af;
  font-size: 12px;
}
.fcwn-video { padding: 10px 14px 0; }
.fcwn-video video { width: 100%; border-radius: 6px; display: block; }
.fcwn-video-top { display: flex; align-items: flex-start; }
.fcwn-video-center { display: flex; align-items: center; }
.fcwn-video-bottom { display: flex; align-items: flex-end; }
@media (max-width: 480px) {
  .fcwn-button { width: {{BUTTON_SIZE_MOBILE}}px; height: {{BUTTON_SIZE_MOBILE}}px; }
  .fcwn-glyph { font-size: {{ICON_SIZE_MOBILE}}px; }
  .fcwn-button-icon-img { width: {{ICON_SIZE_MOBILE}}px; height: {{ICON_SIZE_MOBILE}}px; }
  .fcwn-channels { gap: {{CHANNEL_GAP_MOBILE}}px; }
  .fcwn-modal-content { width: calc(100vw - 24px); }
}`,
	JS: `var root = document.getElementById('{{CONTAINER_ID}}');
if (!root) { return; }
var button = root.querySelector('.fcwn-button');
var modal = root.querySelector('.fcwn-modal');
var closeButton = root.querySelector('.fcwn-close');
var tooltipText = '{{TOOLTIP_TEXT_JS}}';
var openGroup = null;

function closeGroup() {
  if (openGroup) {
    openGroup.classList.remove('fcwn-open');
    openGroup = null;
  }
}

function toggleGroup(group) {
  if (openGroup === group) {
    closeGroup();
    return;
  }
  closeGroup();
  group.classList.add('fcwn-open');
  openGroup = group;
}

button.addEventListener('click', function () {
  modal.classList.toggle('fcwn-open');
  closeGroup();
});
if (tooltipText) { button.setAttribute('title', tooltipText); }
closeButton.addEventListener('click', function () {
  modal.classList.remove('fcwn-open');
  closeGroup();
});
document.addEventListener('keydown', function (ev) {
  if (ev.key === 'Escape') {
    modal.classList.remove('fcwn-open');
    closeGroup();
  }
});
document.addEventListener('click', function (ev) {
  if (!root.contains(ev.target) && modal.classList.contains('fcwn-open')) {
    modal.classList.remove('fcwn-open');
    closeGroup();
  }
});
Array.prototype.forEach.call(root.querySelectorAll('[data-fcwn-url]'), function (el) {
  el.addEventListener('click', function (ev) {
    ev.preventDefault();
    window.{{OPENER_NAME}}(el.getAttribute('data-fcwn-url'));
  });
});
Array.prototype.forEach.call(root.querySelectorAll('[data-fcwn-dropdown]'), function (trigger) {
  trigger.addEventListener('click', function (ev) {
    ev.stopPropagation();
    toggleGroup(trigger.closest('.fcwn-group'));
  });
});
document.addEventListener('click', function (ev) {
  if (openGroup && !openGroup.contains(ev.target)) {
    closeGroup();
  }
});`,
}
